package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/cleanpos/internal/ports"
)

// InputFormat — формат входного файла.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// DetectFormat — определение формата по расширению; неизвестное расширение считается JSON.
func DetectFormat(path string) InputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return FormatJSONL
	default:
		return FormatJSON
	}
}

// File — валидирует файл как один JSON-документ или JSONL и пишет валидный вывод в w.
// Для одиночного JSON ошибка валидации возвращается вместе с отчётом "0 valid / 1 invalid".
func File(ctx context.Context, validator ports.OrderValidator, path string, format InputFormat, w io.Writer) (Report, error) {
	if format == FormatAuto || format == "" {
		format = DetectFormat(path)
	}
	if format != FormatJSON && format != FormatJSONL {
		return Report{}, fmt.Errorf("unsupported format: %s", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	if format == FormatJSONL {
		return Stream(ctx, validator, f, w)
	}

	raw, err := io.ReadAll(f)
	if err != nil {
		return Report{}, fmt.Errorf("read file: %w", err)
	}
	order, err := OrderFromJSON(ctx, validator, raw)
	if err != nil {
		return Report{Invalid: 1, Failures: []LineError{{Line: 1, Err: err}}}, err
	}
	if err := writeCanonical(w, order); err != nil {
		return Report{}, err
	}
	return Report{Valid: 1}, nil
}
