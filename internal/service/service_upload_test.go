package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/mock"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

func TestUploadService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockFileStorage(ctrl)
	svc := NewUploadService(files, logger.Nop())

	files.EXPECT().Save(gomock.Any(), "cat.png", gomock.Any()).Return(models.Upload{Name: "cat.png", Size: 4}, nil)

	upload, err := svc.Upload(context.Background(), "cat.png", strings.NewReader("meow"))
	require.NoError(t, err)
	assert.Equal(t, "cat.png", upload.Name)
}

func TestUploadService_Upload_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewUploadService(mock.NewMockFileStorage(ctrl), logger.Nop())

	_, err := svc.Upload(context.Background(), "", strings.NewReader("meow"))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUploadService_Open_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockFileStorage(ctrl)
	svc := NewUploadService(files, logger.Nop())

	files.EXPECT().Open(gomock.Any(), "nope.txt").Return(nil, store.ErrFileNotFound)

	_, err := svc.Open(context.Background(), "nope.txt")
	assert.ErrorIs(t, err, store.ErrFileNotFound)
}
