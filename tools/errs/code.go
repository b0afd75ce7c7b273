package errs

// 业务错误码。1xxx 账号，2xxx 角色，3xxx 连接。
var (
	ErrBadRequest = NewCodeError(1000, "bad request")

	ErrLoginTaken     = NewCodeError(1001, "login or email already taken")
	ErrBadCredentials = NewCodeError(1002, "wrong login or password")
	ErrTokenInvalid   = NewCodeError(1003, "invalid token")

	ErrCharacterNameTaken = NewCodeError(2001, "character name already taken")
	ErrCharacterMissing   = NewCodeError(2002, "character not found")

	ErrInternal = NewCodeError(5000, "internal error")
)
