package mockdata

import "github.com/fadilmartias/starplan/internal/model"

func Profile(userID string) model.UserProfile {
	return model.UserProfile{
		ID:        "1",
		UserID:    userID,
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Phone:     "(555) 123-4567",
		Location:  "San Francisco, CA",
		Title:     "Frontend Developer",
		Summary:   "Experienced frontend developer with 5+ years of experience in building responsive web and mobile applications using React and React Native.",
		Skills:    "React, React Native, JavaScript, TypeScript, HTML, CSS, Redux",
		CreatedAt: "2023-01-15T00:00:00.000Z",
		UpdatedAt: "2023-06-20T00:00:00.000Z",
	}
}
