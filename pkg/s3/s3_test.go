package s3

import (
	"context"
	"io"
	"strings"
	"testing"

	"blogify/pkg/config"
	"blogify/pkg/storage"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	s3iface.S3API
	objects map[string]string
}

func (f *fakeS3) PutObjectWithContext(_ aws.Context, in *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.StringValue(in.Key)] = string(data)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadObjectWithContext(_ aws.Context, in *s3.HeadObjectInput, _ ...request.Option) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[aws.StringValue(in.Key)]; !ok {
		return nil, awserr.New("NotFound", "Not Found", nil)
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) DeleteObjectWithContext(_ aws.Context, in *s3.DeleteObjectInput, _ ...request.Option) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.StringValue(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestClient_Lifecycle(t *testing.T) {
	ctx := context.Background()
	api := &fakeS3{objects: map[string]string{}}
	client := NewWithAPI(api, "blogify", "http://localhost:9000/blogify")

	require.NoError(t, client.Put(ctx, "blogs/blog_1.png", strings.NewReader("img"), "image/png"))
	assert.Equal(t, "img", api.objects["blogs/blog_1.png"])

	exists, err := client.Exists(ctx, "blogs/blog_1.png")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, client.Delete(ctx, "blogs/blog_1.png"))

	exists, err = client.Exists(ctx, "blogs/blog_1.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClient_PutRejectsEscapingKey(t *testing.T) {
	client := NewWithAPI(&fakeS3{objects: map[string]string{}}, "blogify", "")
	err := client.Put(context.Background(), "../x", strings.NewReader("x"), "text/plain")
	assert.ErrorIs(t, err, storage.ErrInvalidKey)
}

func TestObjectBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "minio without ssl",
			cfg:  config.Config{AWSEndpoint: "http://localhost:9000", S3UseSSL: "false", S3BucketName: "blogify"},
			want: "http://localhost:9000/blogify",
		},
		{
			name: "minio with ssl",
			cfg:  config.Config{AWSEndpoint: "minio.internal:9000", S3UseSSL: "true", S3BucketName: "blogify"},
			want: "https://minio.internal:9000/blogify",
		},
		{
			name: "aws",
			cfg:  config.Config{AWSRegion: "eu-west-1", S3BucketName: "blogify"},
			want: "https://blogify.s3.eu-west-1.amazonaws.com",
		},
		{
			name: "aws default region",
			cfg:  config.Config{S3BucketName: "blogify"},
			want: "https://blogify.s3.us-east-1.amazonaws.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, objectBaseURL(&tt.cfg))
		})
	}
}

func TestClient_URL(t *testing.T) {
	client := NewWithAPI(nil, "blogify", "https://blogify.s3.us-east-1.amazonaws.com/")
	assert.Equal(t, "https://blogify.s3.us-east-1.amazonaws.com/blogs/a.png", client.URL("blogs/a.png"))
}
