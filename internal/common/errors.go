package common

type ErrorCode string
type ErrorMessage string

const (
	ErrCodeConfigLoadFailed          ErrorCode = "CONFIG_LOAD_FAILED"
	ErrCodeInvalidLogLevel           ErrorCode = "INVALID_LOG_LEVEL"
	ErrCodeGRPCConnectionFailed      ErrorCode = "GRPC_CONNECTION_FAILED"
	ErrCodeGRPCServeFailed           ErrorCode = "GRPC_SERVE_FAILED"
	ErrCodeGRPCRequestFailed         ErrorCode = "GRPC_REQUEST_FAILED"
	ErrCodeGRPCConnectionCloseFailed ErrorCode = "GRPC_CONNECTION_CLOSE_FAILED"
	ErrCodeUnsupportedExchange       ErrorCode = "UNSUPPORTED_EXCHANGE"
	ErrCodeSettingsEncodeFailed      ErrorCode = "SETTINGS_ENCODE_FAILED"
)

const (
	ErrMsgConfigLoadFailed          ErrorMessage = "Failed to load configuration"
	ErrMsgInvalidLogLevel           ErrorMessage = "Invalid log level, use: debug, info, warn, error"
	ErrMsgGRPCConnectionFailed      ErrorMessage = "Failed to connect to gRPC server"
	ErrMsgGRPCServeFailed           ErrorMessage = "Failed to serve gRPC"
	ErrMsgGRPCRequestFailed         ErrorMessage = "gRPC request failed"
	ErrMsgGRPCConnectionCloseFailed ErrorMessage = "failed to close gRPC connection"
	ErrMsgUnsupportedExchange       ErrorMessage = "Exchange is not in the supported list"
	ErrMsgSettingsEncodeFailed      ErrorMessage = "Failed to encode settings"
)

func (e ErrorCode) String() string {
	return string(e)
}

func (m ErrorMessage) String() string {
	return string(m)
}
