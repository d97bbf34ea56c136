package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	recordv1 "github.com/muhammadchandra19/wb-report/internal/domain/record/v1"
	"github.com/muhammadchandra19/wb-report/pkg/errors"
)

// SaveJSON writes records to filename as an indented UTF-8 JSON array.
// Field order and value literals are kept as the API returned them.
func SaveJSON(records recordv1.Records, filename string) error {
	if records == nil {
		records = recordv1.Records{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return errors.Wrap(err, errors.FileWriteError, "failed to encode records")
	}

	return writeAtomic(filename, func(f *os.File) error {
		_, err := f.Write(buf.Bytes())
		return err
	})
}

// LoadJSON reads a file written by SaveJSON.
func LoadJSON(filename string) (recordv1.Records, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, errors.FileReadError, fmt.Sprintf("failed to read %s", filename))
	}
	recs, err := recordv1.DecodeRecords(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ParseError, fmt.Sprintf("failed to decode %s", filename))
	}
	return recs, nil
}
