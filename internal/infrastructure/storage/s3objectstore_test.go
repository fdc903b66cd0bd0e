package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/parley-chat/parley/internal/shared/config"
	"github.com/parley-chat/parley/internal/shared/logger"
)

type fakeS3 struct {
	puts    []*s3.PutObjectInput
	bodies  []string
	deletes []string
	putErr  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	b, _ := io.ReadAll(in.Body)
	f.puts = append(f.puts, in)
	f.bodies = append(f.bodies, string(b))
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func newTestStore(api objectAPI) *S3ObjectStore {
	return &S3ObjectStore{
		api:     api,
		bucket:  "media",
		baseURL: "https://cdn.example.com",
		logger:  logger.NewLogger(),
	}
}

func TestUpload(t *testing.T) {
	api := &fakeS3{}
	store := newTestStore(api)

	ref, err := store.Upload(context.Background(), "user_profiles", Object{
		Body:        strings.NewReader("png-bytes"),
		Size:        9,
		ContentType: "image/png",
		Filename:    "me.PNG",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref.StorageID, "user_profiles/"))
	assert.True(t, strings.HasSuffix(ref.StorageID, ".png"))
	assert.Equal(t, "https://cdn.example.com/"+ref.StorageID, ref.URL)

	require.Len(t, api.puts, 1)
	assert.Equal(t, "media", aws.ToString(api.puts[0].Bucket))
	assert.Equal(t, "image/png", aws.ToString(api.puts[0].ContentType))
	assert.Equal(t, "png-bytes", api.bodies[0])
}

func TestUpload_KeysAreUnique(t *testing.T) {
	store := newTestStore(&fakeS3{})

	a, err := store.Upload(context.Background(), "chat_images", Object{Body: strings.NewReader("a"), ContentType: "image/jpeg"})
	require.NoError(t, err)
	b, err := store.Upload(context.Background(), "chat_images", Object{Body: strings.NewReader("b"), ContentType: "image/jpeg"})
	require.NoError(t, err)

	assert.NotEqual(t, a.StorageID, b.StorageID)
}

func TestUpload_Error(t *testing.T) {
	store := newTestStore(&fakeS3{putErr: errors.New("access denied")})

	_, err := store.Upload(context.Background(), "chat_images", Object{Body: strings.NewReader("a")})
	assert.ErrorContains(t, err, "failed to upload object")
}

func TestDelete(t *testing.T) {
	api := &fakeS3{}
	store := newTestStore(api)

	require.NoError(t, store.Delete(context.Background(), "user_profiles/x.png"))
	require.NoError(t, store.Delete(context.Background(), ""))
	assert.Equal(t, []string{"user_profiles/x.png"}, api.deletes)
}

func TestNewS3ObjectStore_AppliesConfig(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "eu-west-1", lo.Region)
		assert.NotNil(t, lo.Credentials)
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}

	store, err := NewS3ObjectStore(context.Background(), sharedConfig.StorageConfig{
		Region:          "eu-west-1",
		Endpoint:        "http://minio:9000",
		Bucket:          "media",
		AccessKeyID:     "minioadmin",
		SecretAccessKey: "minioadmin",
		UsePathStyle:    true,
	}, logger.NewLogger())
	require.NoError(t, err)

	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://minio:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, "http://minio:9000/media", store.baseURL)
}

func TestNewS3ObjectStore_LoadError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("boom")
	}

	_, err := NewS3ObjectStore(context.Background(), sharedConfig.StorageConfig{Region: "us-east-1"}, logger.NewLogger())
	assert.ErrorContains(t, err, "failed to load aws config")
}

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://media.s3.us-east-1.amazonaws.com",
		publicBaseURL(sharedConfig.StorageConfig{Bucket: "media", Region: "us-east-1"}))
	assert.Equal(t, "https://cdn.example.com",
		publicBaseURL(sharedConfig.StorageConfig{PublicBaseURL: "https://cdn.example.com/"}))
}
