package grpcdecode

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xdao.co/urtx/archive"
)

// ErrNoBlob is returned by the client when the server found nothing
// extractable in the container text.
var ErrNoBlob = errors.New("grpcdecode: no extractable transaction blob")

func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		// Server uses NotFound both for failed extraction and for
		// absent archive entries; disambiguate by message.
		if st.Message() == archive.ErrNotFound.Error() {
			return archive.ErrNotFound
		}
		return ErrNoBlob
	case codes.InvalidArgument:
		if st.Message() == archive.ErrInvalidCID.Error() {
			return archive.ErrInvalidCID
		}
		return err
	case codes.DataLoss:
		return archive.ErrCIDMismatch
	default:
		return err
	}
}
