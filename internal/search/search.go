// Package search is a stateless projection over the current user and
// post snapshots. It owns no state: for a fixed snapshot and query it
// returns identical membership and ordering on every call.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/kevin-411/college-network-app/internal/models"
)

// MinQueryLen is the overlay's trigger threshold: shorter queries yield
// empty result sets and the caller shows Trending instead. The dedicated
// page has no threshold.
const MinQueryLen = 3

// Snapshot is the read-only input to one match computation. The matcher
// must not mutate it.
type Snapshot struct {
	Users []models.User
	Posts []models.Post
}

// Caps bounds each result category; zero means uncapped.
type Caps struct {
	Users int
	Posts int
	Tags  int
}

// OverlayCaps is what the instant overlay uses. The dedicated page
// passes the zero value (uncapped).
var OverlayCaps = Caps{Users: 3, Posts: 3, Tags: 5}

type Results struct {
	Users []models.User `json:"users"`
	Posts []models.Post `json:"posts"`
	Tags  []string      `json:"tags"`
}

// Search matches the query against users, posts and the deduplicated tag
// set, preserving snapshot order among matches.
//
// Users match on a case-insensitive substring of full name, username or
// college. Posts match on a substring of content or an exact
// case-insensitive tag. Tags match on a substring, first-seen order.
func Search(query string, snap Snapshot, caps Caps) Results {
	res := Results{
		Users: []models.User{},
		Posts: []models.Post{},
		Tags:  []string{},
	}
	q := strings.ToLower(query)

	for _, u := range snap.Users {
		if capped(len(res.Users), caps.Users) {
			break
		}
		if contains(u.FullName, q) || contains(u.Username, q) || contains(u.College, q) {
			res.Users = append(res.Users, u)
		}
	}

	for _, p := range snap.Posts {
		if capped(len(res.Posts), caps.Posts) {
			break
		}
		if contains(p.Content, q) || hasTag(p.Tags, q) {
			res.Posts = append(res.Posts, p)
		}
	}

	seen := make(map[string]bool)
	for _, p := range snap.Posts {
		for _, tag := range p.Tags {
			key := strings.ToLower(tag)
			if seen[key] || !strings.Contains(key, q) {
				continue
			}
			seen[key] = true
			if capped(len(res.Tags), caps.Tags) {
				continue
			}
			res.Tags = append(res.Tags, tag)
		}
	}
	return res
}

// Overlay is the instant-search variant: the capped matcher behind the
// length trigger. Queries under MinQueryLen match nothing at all.
func Overlay(query string, snap Snapshot) Results {
	if utf8.RuneCountInString(query) < MinQueryLen {
		return Results{
			Users: []models.User{},
			Posts: []models.Post{},
			Tags:  []string{},
		}
	}
	return Search(query, snap, OverlayCaps)
}

// Trending is the fixed fallback shown for sub-threshold queries. It is
// not computed from data.
func Trending() []string {
	return []string{"MachineLearning", "StudyGroup", "MIT", "AI", "Neuroscience"}
}

func contains(s, lowered string) bool {
	return strings.Contains(strings.ToLower(s), lowered)
}

func hasTag(tags []string, lowered string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, lowered) {
			return true
		}
	}
	return false
}

func capped(have, limit int) bool {
	return limit > 0 && have >= limit
}
