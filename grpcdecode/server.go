// Package grpcdecode exposes the UR transaction decoder as a gRPC
// service, for callers whose runtime cannot perform the decode locally
// (the original motivating case being a browser wallet frontend).
package grpcdecode

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/ipfs/go-cid"

	"xdao.co/urtx/archive"
	"xdao.co/urtx/cbor"
	"xdao.co/urtx/urtx"
)

// Server implements the Decoder service over the urtx pipeline.
//
// When Store is non-nil, every successfully extracted byte-aligned blob
// is archived and later retrievable through GetBlob.
type Server struct {
	UnimplementedDecoderServer

	Limits cbor.Limits
	Store  archive.Store
}

func (s *Server) Decode(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing decoder")
	}
	urData := in.GetValue()
	if urData == "" {
		return nil, status.Error(codes.InvalidArgument, "empty container text")
	}

	blob, err := urtx.DecodeWithLimits(urData, s.Limits)
	if err != nil {
		var ue *urtx.Error
		switch {
		case errors.As(err, &ue) && ue.RuleID == "URTX-TXT-002":
			return nil, status.Error(codes.InvalidArgument, ue.Message)
		case errors.As(err, &ue) && ue.Kind != urtx.KindInternal:
			return nil, status.Error(codes.NotFound, "unable to extract a transaction blob")
		default:
			return nil, status.Error(codes.Internal, err.Error())
		}
	}

	if s.Store != nil {
		// Odd-length blobs from the raw-text fallback have no byte
		// representation; they are returned but not archived.
		if raw, derr := hex.DecodeString(strings.ToLower(blob)); derr == nil {
			if _, perr := s.Store.Put(raw); perr != nil {
				return nil, status.Error(codes.Internal, perr.Error())
			}
		}
	}
	return wrapperspb.String(blob), nil
}

func (s *Server) GetBlob(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing archive")
	}
	id, err := cid.Decode(in.GetValue())
	if err != nil || !id.Defined() {
		return nil, status.Error(codes.InvalidArgument, archive.ErrInvalidCID.Error())
	}
	b, err := s.Store.Get(id)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bytes(b), nil
}

func (s *Server) HasBlob(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing archive")
	}
	id, err := cid.Decode(in.GetValue())
	if err != nil || !id.Defined() {
		return nil, status.Error(codes.InvalidArgument, archive.ErrInvalidCID.Error())
	}
	return wrapperspb.Bool(s.Store.Has(id)), nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, archive.ErrNotFound):
		return status.Error(codes.NotFound, archive.ErrNotFound.Error())
	case errors.Is(err, archive.ErrInvalidCID):
		return status.Error(codes.InvalidArgument, archive.ErrInvalidCID.Error())
	case errors.Is(err, archive.ErrCIDMismatch):
		return status.Error(codes.DataLoss, archive.ErrCIDMismatch.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
