package s3

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/singleflight"

	"github.com/lobbynetz/backend/internal/util"
	"github.com/lobbynetz/backend/pkg/loader"
)

const maxFetchAttempts = 3

// ObjectGetter is the subset of the S3 client used by the loader.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3DatasetLoader is a DatasetLoader implementation that loads dataset files
// from an S3 bucket or an S3-compatible store such as MinIO. The file path is
// used as the object key.
type S3DatasetLoader struct {
	bucket string
	client ObjectGetter

	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewS3DatasetLoaderWithClient creates a new S3DatasetLoader using an
// existing client. This is useful to reuse a preconfigured AWS client.
func NewS3DatasetLoaderWithClient(bucket string, client ObjectGetter) *S3DatasetLoader {
	return &S3DatasetLoader{
		bucket: bucket,
		client: client,
		cache:  make(map[string][]byte),
	}
}

// GetFileBytes retrieves the object stored under file.Path. Transient
// failures are retried; successful reads are cached.
func (l *S3DatasetLoader) GetFileBytes(ctx context.Context, file loader.DatasetFile) ([]byte, error) {
	cacheKey := loader.CacheKey(file)

	l.cacheMu.RLock()
	if cached, ok := l.cache[cacheKey]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(cacheKey, func() (any, error) {
		l.cacheMu.RLock()
		if cached, ok := l.cache[cacheKey]; ok {
			l.cacheMu.RUnlock()
			return cached, nil
		}
		l.cacheMu.RUnlock()

		byts, err := util.RetryWithContext(ctx, maxFetchAttempts, func(ctx context.Context) ([]byte, error) {
			return l.fetch(ctx, file.Path)
		})
		if err != nil {
			return nil, err
		}

		l.cacheMu.Lock()
		l.cache[cacheKey] = byts
		l.cacheMu.Unlock()

		return byts, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}

func (l *S3DatasetLoader) fetch(ctx context.Context, key string) ([]byte, error) {
	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, out.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
