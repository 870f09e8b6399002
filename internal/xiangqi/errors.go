package xiangqi

import "errors"

var (
	ErrInvalidFEN    = errors.New("invalid FEN")
	ErrMalformedSave = errors.New("malformed save file")
)
