package lr1110

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type enum interface{ ~uint8 }

// enumString returns the name of v or Type(0xNN) for values outside the table.
func enumString[T enum](names map[T]string, typ string, v T) string {
	if s, ok := names[v]; ok {
		return s
	}
	return typ + "(0x" + strconv.FormatUint(uint64(v), 16) + ")"
}

func enumMarshal[T enum](names map[T]string, typ string, v T) ([]byte, error) {
	s, ok := names[v]
	if !ok {
		return nil, invalid(typ, enumString(names, typ, v))
	}
	return []byte(s), nil
}

// enumParse accepts a case insensitive name or the raw chip value in any
// base strconv understands, e.g. "BW125", "bw125" or "0x04".
func enumParse[T enum](names map[T]string, typ string, text []byte) (T, error) {
	s := strings.TrimSpace(string(text))
	for v, name := range names {
		if strings.EqualFold(name, s) {
			return v, nil
		}
	}
	if n, err := strconv.ParseUint(s, 0, 8); err == nil {
		if _, ok := names[T(n)]; ok {
			return T(n), nil
		}
	}
	return 0, invalid(typ, strconv.Quote(s))
}

func enumValid[T enum](names map[T]string, v T) bool {
	_, ok := names[v]
	return ok
}

// ErrInvalidParameter is the cause of every validation error returned by
// this package.
var ErrInvalidParameter = errors.New("invalid parameter")

func invalid(field string, value interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, "lr1110: %s %v", field, value)
}
