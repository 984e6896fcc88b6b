// Package mockdata holds the deterministic data served in mock mode, when the
// matching provider credentials are absent.
package mockdata

import "github.com/fadilmartias/starplan/internal/model"

// Jobs returns a fresh copy of the mock job board on every call.
func Jobs() []model.Job {
	return []model.Job{
		{
			ID:          "1",
			Title:       "Frontend Developer",
			Company:     "Tech Innovations Inc.",
			Location:    "San Francisco, CA",
			Description: "We are looking for a skilled Frontend Developer with experience in React Native and modern JavaScript frameworks.",
			Skills:      model.StringList{"React Native", "JavaScript", "CSS", "UI/UX"},
			Salary:      "$90,000 - $120,000",
			PostedDate:  "2023-06-15",
		},
		{
			ID:          "2",
			Title:       "Full Stack Engineer",
			Company:     "Digital Solutions",
			Location:    "Remote",
			Description: "Join our team as a Full Stack Engineer working on cutting-edge web applications using Node.js and React.",
			Skills:      model.StringList{"Node.js", "React", "MongoDB", "Express"},
			Salary:      "$100,000 - $130,000",
			PostedDate:  "2023-06-18",
		},
		{
			ID:          "3",
			Title:       "Mobile Developer",
			Company:     "AppWorks",
			Location:    "Austin, TX",
			Description: "Seeking a talented Mobile Developer to build innovative applications for iOS and Android platforms.",
			Skills:      model.StringList{"React Native", "iOS", "Android", "API Integration"},
			Salary:      "$85,000 - $115,000",
			PostedDate:  "2023-06-20",
		},
		{
			ID:          "4",
			Title:       "UI/UX Designer",
			Company:     "Creative Minds",
			Location:    "New York, NY",
			Description: "Looking for a UI/UX Designer with a strong portfolio and experience in mobile app design.",
			Skills:      model.StringList{"UI Design", "UX Research", "Figma", "Adobe XD"},
			Salary:      "$80,000 - $110,000",
			PostedDate:  "2023-06-22",
		},
		{
			ID:          "5",
			Title:       "Backend Developer",
			Company:     "Data Systems Inc.",
			Location:    "Chicago, IL",
			Description: "Backend Developer needed to build robust APIs and services using Node.js and PostgreSQL.",
			Skills:      model.StringList{"Node.js", "PostgreSQL", "API Design", "Docker"},
			Salary:      "$95,000 - $125,000",
			PostedDate:  "2023-06-25",
		},
	}
}
