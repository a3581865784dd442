package source

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3 lists the keys of an AWS S3 bucket.
type S3 struct {
	bucket  string
	client  *s3.Client
	context context.Context
}

// S3Args are the arguments for creating a new S3 source.
type S3Args struct {
	Bucket  string          // Required. The name of the S3 bucket to use.
	Client  *s3.Client      // Optional. The S3 client to use. If not provided, a client will be automatically configured from your environment.
	Context context.Context // Optional. The context to use for S3 operations. If not provided, defaults to context.Background().
}

// NewS3 creates a new source which lists keys in AWS S3.
func NewS3(args S3Args) (*S3, error) {
	if args.Context == nil {
		args.Context = context.Background()
	}
	if args.Client == nil {
		cfg, err := config.LoadDefaultConfig(args.Context)
		if err != nil {
			return nil, err
		}
		args.Client = s3.NewFromConfig(cfg)
	}
	return &S3{
		bucket:  args.Bucket,
		client:  args.Client,
		context: args.Context,
	}, nil
}

// List lists all keys in the bucket with the given prefix.
func (s *S3) List(prefix string) ([]Key, error) {
	var keys []Key
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{Bucket: &s.bucket, Prefix: &prefix})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(s.context)
		if err != nil {
			return nil, err
		}
		for _, c := range output.Contents {
			keys = append(keys, Key(*c.Key))
		}
	}
	return keys, nil
}
