package deepseek

import "context"

// IDeepSeek defines the interface for the DeepSeek chat client
type IDeepSeek interface {
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)
}
