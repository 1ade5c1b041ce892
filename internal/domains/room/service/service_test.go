package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	"hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo  *mocks.MockRoom
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Room
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.External.S3.BucketName = "hotel-media"

	f := fixture{
		repo:  mocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, cfg, f.cache, otelMocks.NewOtel(), f.s3)

	return f
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func TestRoomService_Get(t *testing.T) {
	t.Run("cache hit skips the database", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), "room:get:room-1", gomock.Any()).Return(nil)

		_, err := f.svc.Get(context.Background(), "room-1")
		assert.NoError(t, err)
	})

	t.Run("cache miss reads the room", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{
			ID:        "room-1",
			Number:    "204",
			Type:      "Suite",
			Capacity:  3,
			Rate:      240,
			Available: true,
			Amenities: pq.StringArray{"wifi", "minibar"},
		}, nil)

		res, err := f.svc.Get(context.Background(), "room-1")
		assert.NoError(t, err)
		assert.Equal(t, "204", res.Number)
		assert.Equal(t, []string{"wifi", "minibar"}, res.Amenities)
		assert.Equal(t, []string{}, res.Photos)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		Number:   "101",
		Type:     "Standard",
		Capacity: 2,
		Rate:     120,
	}

	t.Run("success", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, room model.Room) error {
			assert.True(t, room.Available)
			assert.Equal(t, "admin-1", room.CreatedBy)
			assert.NotEmpty(t, room.ID)

			return nil
		})

		res, err := f.svc.Create(adminContext(), req)
		assert.NoError(t, err)
		assert.Equal(t, "101", res.Number)
	})

	t.Run("duplicate number", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Create(adminContext(), req)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("unique violation on insert", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})

		_, err := f.svc.Create(adminContext(), req)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("room with reservations", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "room-1"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.Join(errors.New("failed to delete data (room)"), &pq.Error{Code: constant.PqErrorCodeFkViolation}))

		err := f.svc.Delete(adminContext(), "room-1")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("unknown room", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		err := f.svc.Delete(adminContext(), "room-1")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_UploadPhoto(t *testing.T) {
	header := &multipart.FileHeader{Filename: "lobby.webp", Size: 1024}
	req := dto.UploadPhotoRequest{Photo: header}

	t.Run("success", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.s3.EXPECT().
			UploadFile(gomock.Any(), "hotel-media", model.EntityName, nil, header, gomock.Any()).
			Return("https://cdn.example.com/room/abc.webp", nil)
		f.repo.EXPECT().AppendPhoto(gomock.Any(), "room-1", "https://cdn.example.com/room/abc.webp", "admin-1").Return(nil)

		res, err := f.svc.UploadPhoto(adminContext(), req, "room-1")
		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/room/abc.webp", res.URL)
	})

	t.Run("uploaded object is removed when the room update fails", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn.example.com/room/abc.webp", nil)
		f.repo.EXPECT().AppendPhoto(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		f.s3.EXPECT().DeleteFile(gomock.Any(), "hotel-media", model.EntityName, gomock.Any()).Return(nil)

		_, err := f.svc.UploadPhoto(adminContext(), req, "room-1")
		assert.Error(t, err)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.UploadPhoto(adminContext(), req, "room-1")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_DeletePhoto(t *testing.T) {
	url := "https://cdn.example.com/room/abc.webp"

	t.Run("success", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().RemovePhoto(gomock.Any(), "room-1", url, "admin-1").Return(true, nil)
		f.s3.EXPECT().GetObjectNameFromURL("hotel-media", model.EntityName, url).Return("abc.webp")
		f.s3.EXPECT().DeleteFile(gomock.Any(), "hotel-media", model.EntityName, "abc.webp").Return(nil)

		err := f.svc.DeletePhoto(adminContext(), dto.DeletePhotoRequest{URL: url}, "room-1")
		assert.NoError(t, err)
	})

	t.Run("photo not attached", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().RemovePhoto(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.DeletePhoto(adminContext(), dto.DeletePhotoRequest{URL: url}, "room-1")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
