package deltamd

import (
	"bytes"
	"errors"
	"testing"
)

func TestValidateInputAcceptsMarkdown(t *testing.T) {
	src := []byte("# Title\n\nplain **bold** text with\ttabs\r\nand CRLF\n")
	if err := ValidateInput(src); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestValidateInputAcceptsEmpty(t *testing.T) {
	if err := ValidateInput(nil); err != nil {
		t.Fatalf("expected nil for empty input, got %v", err)
	}
}

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	err := ValidateInput([]byte{0xFF, 0xFE, 'h', 'i'})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsNulByte(t *testing.T) {
	err := ValidateInput([]byte("text\x00more"))
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput for NUL, got %v", err)
	}
}

func TestValidateInputRejectsControlHeavyInput(t *testing.T) {
	src := bytes.Repeat([]byte{'a', 'b', 'c', 0x01}, 32)
	err := ValidateInput(src)
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput for control-heavy input, got %v", err)
	}
}

func TestValidateInputToleratesShortControlSample(t *testing.T) {
	// Below the sampling threshold a stray control byte is not enough
	// to call the input binary.
	if err := ValidateInput([]byte("a\x01b")); err != nil {
		t.Fatalf("expected short input to pass, got %v", err)
	}
}
