// Package cloudwriter abstracts buffered object-store uploads for
// report exports. Writers buffer locally and upload the whole object on
// Close, since parquet files cannot be streamed piecewise to S3.
package cloudwriter

type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}
