package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/cleanpos/internal/ports"
)

// maxLineSize — предел длины одной строки JSONL.
const maxLineSize = 10 * 1024 * 1024

// LineError — ошибка валидации конкретной строки (нумерация с 1).
type LineError struct {
	Line int
	Err  error
}

// Report — итог пакетной валидации.
type Report struct {
	Valid    int
	Invalid  int
	Failures []LineError
}

func (r Report) String() string {
	return fmt.Sprintf("%d valid / %d invalid", r.Valid, r.Invalid)
}

// Stream — читает JSONL, валидирует каждую строку и пишет валидные заказы в w
// в каноническом компактном виде. Пустые строки пропускаются.
func Stream(ctx context.Context, validator ports.OrderValidator, r io.Reader, w io.Writer) (Report, error) {
	var rep Report

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		order, err := OrderFromJSON(ctx, validator, raw)
		if err != nil {
			rep.Invalid++
			rep.Failures = append(rep.Failures, LineError{Line: line, Err: err})
			continue
		}
		if err := writeCanonical(w, order); err != nil {
			return rep, err
		}
		rep.Valid++
	}
	if err := scanner.Err(); err != nil {
		return rep, fmt.Errorf("scan: %w", err)
	}
	return rep, nil
}

func writeCanonical(w io.Writer, v any) error {
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	out = append(out, '\n')
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
