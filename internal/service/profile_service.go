package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"alcyxob/workout-tracker/internal/storage"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidContentType = errors.New("profile image must be png, jpeg, gif or webp")
	ErrForeignObjectKey   = errors.New("object key does not belong to this user")
	ErrUploadURLError     = errors.New("failed to generate upload URL")
)

const avatarPrefix = "avatars"

// avatarExtensions lists the accepted image content types.
var avatarExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// UploadURLResponse structure for returning URL and object key
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"` // The key the client reports back on confirm
}

// Profile is a user as shown to its owner. ImgURL is resolved to a
// temporary download URL when the image lives in our bucket.
type Profile struct {
	*domain.User
	ImgURL string `json:"imgUrl,omitempty"`
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*Profile, error)
	RequestAvatarUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*UploadURLResponse, error)
	ConfirmAvatar(ctx context.Context, userID primitive.ObjectID, objectKey string) (*Profile, error)
}

type profileService struct {
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
}

func NewProfileService(userRepo repository.UserRepository, fileStorage storage.FileStorage) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		fileStorage: fileStorage,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*Profile, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toProfile(ctx, user), nil
}

func (s *profileService) RequestAvatarUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*UploadURLResponse, error) {
	ext, ok := avatarExtensions[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok {
		return nil, ErrInvalidContentType
	}
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}

	// avatars/<userID>/<uuid>.<ext>
	objectKey := path.Join(avatarDir(userID), uuid.NewString()+"."+ext)

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUploadURLError, err)
	}

	return &UploadURLResponse{UploadURL: uploadURL, ObjectKey: objectKey}, nil
}

func (s *profileService) ConfirmAvatar(ctx context.Context, userID primitive.ObjectID, objectKey string) (*Profile, error) {
	if !ownsAvatarKey(userID, objectKey) {
		return nil, ErrForeignObjectKey
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	previous := ""
	if user.HasUploadedImg() {
		previous = user.Img
	}

	if err := s.userRepo.SetImg(ctx, userID, objectKey); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Img = objectKey

	if previous != "" && previous != objectKey {
		// The old picture is unreachable now; failing to remove it only
		// leaves garbage in the bucket
		if err := s.fileStorage.DeleteObject(ctx, previous); err != nil {
			log.Warnf("remove previous avatar %s of user %s: %v", previous, userID.Hex(), err)
		}
	}

	return s.toProfile(ctx, user), nil
}

func avatarDir(userID primitive.ObjectID) string {
	return path.Join(avatarPrefix, userID.Hex())
}

// ownsAvatarKey accepts only clean keys directly inside the user's avatar
// directory.
func ownsAvatarKey(userID primitive.ObjectID, objectKey string) bool {
	if objectKey == "" || strings.Contains(objectKey, "..") || path.Clean(objectKey) != objectKey {
		return false
	}
	return path.Dir(objectKey) == avatarDir(userID) && path.Base(objectKey) != ""
}

func (s *profileService) getUser(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *profileService) toProfile(ctx context.Context, user *domain.User) *Profile {
	profile := &Profile{User: user, ImgURL: user.Img}
	if user.HasUploadedImg() {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, user.Img, storage.DefaultPresignedURLExpiry)
		if err != nil {
			log.Warnf("presign avatar of user %s: %v", user.ID.Hex(), err)
			url = ""
		}
		profile.ImgURL = url
	}
	return profile
}
