package sid

import (
	"fmt"

	"github.com/sony/sonyflake"
)

type Sid struct {
	sf *sonyflake.Sonyflake
}

func NewSid() *Sid {
	sf := sonyflake.NewSonyflake(sonyflake.Settings{})
	if sf == nil {
		panic("sonyflake not created")
	}
	return &Sid{sf}
}

// GenString returns a base36 unique id.
func (s Sid) GenString() (string, error) {
	id, err := s.sf.NextID()
	if err != nil {
		return "", fmt.Errorf("generate id failed: %w", err)
	}
	return IntToBase36(id), nil
}

func (s Sid) GenUint64() (uint64, error) {
	return s.sf.NextID()
}

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

func IntToBase36(n uint64) string {
	if n == 0 {
		return "0"
	}
	buf := make([]byte, 0, 14)
	for n > 0 {
		buf = append(buf, base36Chars[n%36])
		n /= 36
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
