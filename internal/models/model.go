package models

// User is a member of the network. No credential material lives on the
// record; login is resolved against a fixed directory.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	College    string `json:"college"`
	Year       string `json:"year"`
	Avatar     string `json:"avatar"`
	Bio        string `json:"bio"`
	Followers  int    `json:"followers"`
	Following  int    `json:"following"`
	IsVerified bool   `json:"isVerified"`
	JoinDate   string `json:"joinDate"`
}

// Post embeds the author by value at creation time. A later profile edit
// does not retroactively update old posts.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Author    User      `json:"author"`
	Content   string    `json:"content"`
	Images    []string  `json:"images,omitempty"`
	Tags      []string  `json:"tags"`
	Likes     int       `json:"likes"`
	Comments  []Comment `json:"comments"`
	Shares    int       `json:"shares"`
	Timestamp string    `json:"timestamp"` // RFC 3339
	College   string    `json:"college"`
}

type Comment struct {
	ID        string `json:"id"`
	AuthorID  string `json:"authorId"`
	Author    User   `json:"author"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Likes     int    `json:"likes"`
}

type College struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Logo      string `json:"logo"`
	NewsCount int    `json:"newsCount"`
}

type Message struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
	Timestamp  string `json:"timestamp"`
	Read       bool   `json:"read"`
}

type Notification struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Type      string `json:"type"` // like, comment, follow, message
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}
