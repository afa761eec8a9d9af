package testutil

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// TestBucket is the single bucket the service stores everything in.
const TestBucket = "photos"

// SetupTestBucket (re)creates the test bucket and returns a cleanup function
// that drains and removes it.
func SetupTestBucket(client *minio.Client) (func() error, error) {
	ctx := context.Background()

	// drop any leftovers from a previous run
	emptyBucket(ctx, client, TestBucket)
	_ = client.RemoveBucket(ctx, TestBucket)

	if err := client.MakeBucket(ctx, TestBucket, minio.MakeBucketOptions{}); err != nil {
		// if it already exists, skip; otherwise fail
		exists, err2 := client.BucketExists(ctx, TestBucket)
		if err2 != nil || !exists {
			return nil, fmt.Errorf("could not create bucket %q: %w", TestBucket, err)
		}
	}

	cleanup := func() error {
		emptyBucket(ctx, client, TestBucket)
		if err := client.RemoveBucket(ctx, TestBucket); err != nil {
			return fmt.Errorf("could not remove bucket %q: %w", TestBucket, err)
		}
		return nil
	}

	return cleanup, nil
}

func emptyBucket(ctx context.Context, client *minio.Client, bucket string) {
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			continue
		}
		_ = client.RemoveObject(ctx, bucket, obj.Key, minio.RemoveObjectOptions{})
	}
}
