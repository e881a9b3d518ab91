// Package seed holds the canonical mock collections the stores are loaded
// from. The hand-written records are fixed fixtures the rest of the system
// (and its tests) depend on; the generated tail is produced with a fixed
// gofakeit seed so every process start observes the same data.
package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/kevin-411/college-network-app/internal/models"
)

// fakerSeed pins the generated records so snapshots are reproducible.
const fakerSeed = 411

const avatarURL = "https://images.pexels.com/photos/1036623/pexels-photo-1036623.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop"

// Colleges returns the fixed college directory.
func Colleges() []models.College {
	return []models.College{
		{ID: "1", Name: "Stanford University", Logo: "🎓", NewsCount: 12},
		{ID: "2", Name: "MIT", Logo: "🔬", NewsCount: 8},
		{ID: "3", Name: "Harvard University", Logo: "📚", NewsCount: 15},
		{ID: "4", Name: "UC Berkeley", Logo: "🐻", NewsCount: 10},
		{ID: "5", Name: "Caltech", Logo: "🔭", NewsCount: 6},
	}
}

// Users returns the fixed member directory followed by a deterministic
// generated tail.
func Users() []models.User {
	users := []models.User{
		{
			ID:         "1",
			Username:   "sarah_chen",
			Email:      "sarah.chen@stanford.edu",
			FullName:   "Sarah Chen",
			College:    "Stanford University",
			Year:       "Senior",
			Avatar:     avatarURL,
			Bio:        "Computer Science major passionate about AI and machine learning. Always ready to help fellow students!",
			Followers:  342,
			Following:  189,
			IsVerified: true,
			JoinDate:   "2024-01-15",
		},
		{
			ID:         "2",
			Username:   "mike_rodriguez",
			Email:      "mike.r@mit.edu",
			FullName:   "Miguel Rodriguez",
			College:    "MIT",
			Year:       "Junior",
			Avatar:     avatarURL,
			Bio:        "Mechanical Engineering student. Love building things and solving complex problems.",
			Followers:  275,
			Following:  156,
			IsVerified: false,
			JoinDate:   "2024-02-20",
		},
		{
			ID:         "3",
			Username:   "emma_davis",
			Email:      "emma.davis@harvard.edu",
			FullName:   "Emma Davis",
			College:    "Harvard University",
			Year:       "Senior",
			Avatar:     avatarURL,
			Bio:        "Pre-med student interested in neuroscience research. Coffee enthusiast.",
			Followers:  428,
			Following:  203,
			IsVerified: true,
			JoinDate:   "2024-01-08",
		},
	}
	return append(users, generatedUsers()...)
}

func generatedUsers() []models.User {
	f := gofakeit.New(fakerSeed)
	colleges := Colleges()
	years := []string{"Freshman", "Sophomore", "Junior", "Senior"}

	out := make([]models.User, 0, 5)
	for i := 0; i < 5; i++ {
		c := colleges[i%len(colleges)]
		out = append(out, models.User{
			ID:         fmt.Sprintf("%d", 4+i),
			Username:   f.Username(),
			Email:      f.Email(),
			FullName:   f.Name(),
			College:    c.Name,
			Year:       years[i%len(years)],
			Avatar:     avatarURL,
			Bio:        f.Sentence(8),
			Followers:  f.Number(10, 500),
			Following:  f.Number(10, 400),
			IsVerified: f.Bool(),
			JoinDate:   "2024-03-01",
		})
	}
	return out
}

// Posts returns the canonical timeline, most recent first.
func Posts() []models.Post {
	users := Users()
	return []models.Post{
		{
			ID:        "1",
			AuthorID:  "1",
			Author:    users[0],
			Content:   "Just finished my final project on neural networks! The model achieved 94% accuracy on the test dataset. Excited to share my findings with the research community. #MachineLearning #AI #Stanford",
			Images:    []string{"https://images.pexels.com/photos/8439093/pexels-photo-8439093.jpeg?auto=compress&cs=tinysrgb&w=600"},
			Tags:      []string{"MachineLearning", "AI", "Stanford"},
			Likes:     47,
			Comments:  []models.Comment{},
			Shares:    12,
			Timestamp: "2024-01-20T10:30:00Z",
			College:   "Stanford University",
		},
		{
			ID:        "2",
			AuthorID:  "2",
			Author:    users[1],
			Content:   "Looking for study partners for thermodynamics exam next week. Anyone interested in forming a study group? We can meet at the library. #StudyGroup #MIT #MechE",
			Tags:      []string{"StudyGroup", "MIT", "MechE"},
			Likes:     23,
			Comments:  []models.Comment{},
			Shares:    8,
			Timestamp: "2024-01-19T15:45:00Z",
			College:   "MIT",
		},
		{
			ID:        "3",
			AuthorID:  "3",
			Author:    users[2],
			Content:   "Amazing lecture today on neurodegenerative diseases! Dr. Smith's research on Alzheimer's prevention is groundbreaking. Grateful to be learning from the best. #Neuroscience #Harvard #PreMed",
			Images:    []string{"https://images.pexels.com/photos/8439093/pexels-photo-8439093.jpeg?auto=compress&cs=tinysrgb&w=600"},
			Tags:      []string{"Neuroscience", "Harvard", "PreMed"},
			Likes:     65,
			Comments:  []models.Comment{},
			Shares:    15,
			Timestamp: "2024-01-18T14:20:00Z",
			College:   "Harvard University",
		},
	}
}

// Messages returns deterministic seeded threads between the fixed users,
// newest last within a thread.
func Messages() []models.Message {
	f := gofakeit.New(fakerSeed)
	pairs := [][2]string{{"2", "1"}, {"3", "1"}, {"1", "2"}}
	out := make([]models.Message, 0, len(pairs)*2)
	for i, p := range pairs {
		for j := 0; j < 2; j++ {
			at := time.Date(2024, time.January, 21+i, 9+j, 0, 0, 0, time.UTC)
			out = append(out, models.Message{
				ID:         fmt.Sprintf("m%d", i*2+j+1),
				SenderID:   p[j%2],
				ReceiverID: p[(j+1)%2],
				Content:    f.Sentence(6),
				Timestamp:  at.Format(time.RFC3339),
				Read:       j == 0,
			})
		}
	}
	return out
}

// DemoUser is the fixed member any non-admin login resolves to. The email
// the caller supplied replaces the directory one.
func DemoUser(email string) models.User {
	u := Users()[0]
	u.Bio = "Computer Science major passionate about AI and machine learning."
	if email != "" {
		u.Email = email
	}
	return u
}

// AdminUser is the platform administrator account.
func AdminUser() models.User {
	return models.User{
		ID:         "admin-1",
		Username:   "admin",
		Email:      "admin@collegeNetwork.edu",
		FullName:   "Admin User",
		College:    "College Network",
		Year:       "Admin",
		Avatar:     avatarURL,
		Bio:        "Platform Administrator",
		IsVerified: true,
		JoinDate:   "2024-01-01",
	}
}
