package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/mockdata"
	"github.com/fadilmartias/starplan/internal/model"
	"github.com/fadilmartias/starplan/internal/service"
	"github.com/fadilmartias/starplan/internal/util"
	"github.com/google/uuid"
)

// isoMillis matches the timestamps the mobile client already stores.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type ProfileUsecase struct {
	profiles service.ProfileStore
}

// NewProfileUsecase takes a nil store to serve the mock profile.
func NewProfileUsecase(profiles service.ProfileStore) *ProfileUsecase {
	return &ProfileUsecase{profiles: profiles}
}

func (uc *ProfileUsecase) Get(ctx context.Context, userID string) (model.UserProfile, error) {
	call := util.ProviderCall[model.UserProfile]{
		Name: "profile",
		Mock: func() model.UserProfile { return mockdata.Profile(userID) },
	}
	if uc.profiles != nil {
		call.Live = func(ctx context.Context) (model.UserProfile, error) {
			return uc.profiles.GetProfile(ctx, userID)
		}
	}
	return call.Do(ctx)
}

func (uc *ProfileUsecase) Update(ctx context.Context, userID string, update dto.ProfileUpdate) (model.UserProfile, error) {
	call := util.ProviderCall[model.UserProfile]{
		Name: "profile",
		Mock: func() model.UserProfile {
			profile := mockdata.Profile(userID)
			update.Apply(&profile)
			profile.UpdatedAt = time.Now().UTC().Format(isoMillis)
			return profile
		},
	}
	if uc.profiles != nil {
		call.Live = func(ctx context.Context) (model.UserProfile, error) {
			return uc.profiles.UpdateProfile(ctx, userID, update)
		}
	}
	return call.Do(ctx)
}

func (uc *ProfileUsecase) Create(ctx context.Context, profile model.UserProfile) (model.UserProfile, error) {
	call := util.ProviderCall[model.UserProfile]{
		Name: "profile",
		Mock: func() model.UserProfile {
			now := time.Now().UTC().Format(isoMillis)
			created := profile
			created.ID = model.FlexID(strings.ReplaceAll(uuid.NewString(), "-", "")[:13])
			created.CreatedAt = now
			created.UpdatedAt = now
			return created
		},
	}
	if uc.profiles != nil {
		call.Live = func(ctx context.Context) (model.UserProfile, error) {
			return uc.profiles.CreateProfile(ctx, profile)
		}
	}
	return call.Do(ctx)
}
