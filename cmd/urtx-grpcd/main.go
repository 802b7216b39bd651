package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"xdao.co/urtx/archive"
	"xdao.co/urtx/cbor"
	"xdao.co/urtx/grpcdecode"
)

func main() {
	fs := flag.NewFlagSet("urtx-grpcd", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7707", "listen address")
	archiveDir := fs.String("archive-dir", "", "archive extracted blobs under this directory (off when empty)")
	maxInput := fs.Int("max-input", 0, "container/payload size bound in bytes (0 = default)")

	_ = fs.Parse(os.Args[1:])

	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", "urtx-grpcd").Logger()

	var store archive.Store
	if *archiveDir != "" {
		fsStore, err := archive.NewFS(*archiveDir)
		if err != nil {
			log.Error().Err(err).Str("dir", *archiveDir).Msg("open archive")
			os.Exit(2)
		}
		store = fsStore
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer(grpc.UnaryInterceptor(logUnary(log)))
	grpcdecode.RegisterDecoderServer(s, &grpcdecode.Server{
		Limits: cbor.Limits{MaxInput: *maxInput},
		Store:  store,
	})

	log.Info().Str("listen", lis.Addr().String()).Bool("archive", store != nil).Msg("listening")
	if err := s.Serve(lis); err != nil {
		log.Error().Err(err).Msg("serve")
		os.Exit(1)
	}
}

// logUnary logs one line per RPC with method, latency and status code.
func logUnary(log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		ev := log.Info()
		if err != nil {
			ev = log.Warn().Str("code", status.Code(err).String())
		}
		ev.Str("method", info.FullMethod).Dur("took", time.Since(start)).Msg("rpc")
		return resp, err
	}
}
