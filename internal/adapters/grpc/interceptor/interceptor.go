package interceptor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader はリクエスト ID を受け渡すメタデータキーです。
const RequestIDHeader = "x-request-id"

type requestIDKey struct{}

// RequestObserver はリクエストの件数と所要時間を記録します。
type RequestObserver interface {
	ObserveRequest(method, code string, start time.Time)
}

// Chain は本サービスの unary インターセプタを所定の順序で連結します。
// Recovery を最も内側に置くため、panic も Internal としてログとメトリクスに記録されます。
func Chain(logger *zap.Logger, observer RequestObserver) grpc.ServerOption {
	return grpc.ChainUnaryInterceptor(unaryChain(logger, observer)...)
}

func unaryChain(logger *zap.Logger, observer RequestObserver) []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		RequestID(),
		Logging(logger.Named("grpc")),
		Metrics(observer),
		Recovery(logger),
	}
}

// RequestIDFromContext はコンテキストに格納されたリクエスト ID を返します。
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestID は受信メタデータの x-request-id を引き継ぎ、無ければ UUID を採番します。
// 採番した ID はレスポンスヘッダーにも返します。
func RequestID() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		id := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(RequestIDHeader); len(values) > 0 {
				id = values[0]
			}
		}
		if id == "" {
			id = uuid.NewString()
		}

		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, id))

		return handler(context.WithValue(ctx, requestIDKey{}, id), req)
	}
}

// Recovery はハンドラ内の panic を Internal エラーへ変換します。
func Recovery(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("method", info.FullMethod),
					zap.String("request_id", RequestIDFromContext(ctx)),
					zap.String("panic", fmt.Sprint(r)),
					zap.Stack("stack"),
				)
				resp = nil
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

// Logging は 1 リクエストごとに結果を構造化ログへ出力します。
func Logging(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.String("request_id", RequestIDFromContext(ctx)),
			zap.Duration("duration", time.Since(start)),
		}

		switch code {
		case codes.OK:
			logger.Info("request completed", fields...)
		case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
			logger.Error("request failed", append(fields, zap.Error(err))...)
		default:
			logger.Warn("request rejected", append(fields, zap.Error(err))...)
		}

		return resp, err
	}
}

// Metrics はメソッドとステータスコードごとにリクエストを記録します。
func Metrics(observer RequestObserver) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		observer.ObserveRequest(info.FullMethod, status.Code(err).String(), start)
		return resp, err
	}
}
