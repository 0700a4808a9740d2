package server

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/ukaji3/excelviz-go/pkg/excelviz/ingest"
)

// uploadSource adapts a multipart file to ingest.Source so that size and
// type are checked before the content is read.
type uploadSource struct {
	file   multipart.File
	header *multipart.FileHeader
}

var _ ingest.Source = (*uploadSource)(nil)

func (u *uploadSource) Name() string     { return u.header.Filename }
func (u *uploadSource) Size() int64      { return u.header.Size }
func (u *uploadSource) MIMEType() string { return u.header.Header.Get("Content-Type") }

func (u *uploadSource) ReadAll(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return io.ReadAll(u.file)
}
