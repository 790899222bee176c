// Package todofile persists a todo.Store to disk.
//
// The data file is a fixed-layout binary snapshot: an 8-byte header holding
// the record count and the next ID, followed by one fixed-size block per
// todo in storage order. All integers are little-endian so files move
// between machines unchanged.
//
// Before an existing data file is replaced, its bytes are copied to
// <file>.backup. A human-readable export is available through ExportText.
package todofile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/amonks/td/todo"
)

var (
	// ErrIO is returned when the data file cannot be opened, read or written.
	ErrIO = errors.New("todo file i/o failed")

	// ErrCorruptData is returned when a data file does not describe a valid store.
	ErrCorruptData = errors.New("todo file is corrupt")

	// ErrIDOutOfRange is returned by Encode when an ID does not fit the
	// 32-bit fields of the data file.
	ErrIDOutOfRange = fmt.Errorf("%w: id does not fit in 32 bits", todo.ErrValidation)
)

var byteOrder = binary.LittleEndian

// header leads every data file.
type header struct {
	Count  int32
	NextID int32
}

// record is the on-disk block for one todo.
type record struct {
	ID          int32
	Title       [todo.MaxTitleLength]byte
	Description [todo.MaxDescriptionLength]byte
	Priority    int32
	Status      int32
	CreatedAt   int64 // Unix nanoseconds
	UpdatedAt   int64 // Unix nanoseconds
}

var (
	// HeaderSize is the encoded size of the file header in bytes.
	HeaderSize = binary.Size(header{})

	// RecordSize is the encoded size of one todo block in bytes.
	RecordSize = binary.Size(record{})
)

// Encode writes a snapshot in the data file layout.
func Encode(w io.Writer, snapshot todo.Snapshot) error {
	if !fitsInt32(snapshot.NextID) {
		return fmt.Errorf("encode next id %d: %w", snapshot.NextID, ErrIDOutOfRange)
	}
	h := header{Count: int32(len(snapshot.Todos)), NextID: int32(snapshot.NextID)}
	if err := binary.Write(w, byteOrder, &h); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range snapshot.Todos {
		block, err := encodeRecord(&snapshot.Todos[i])
		if err != nil {
			return err
		}
		if err := binary.Write(w, byteOrder, &block); err != nil {
			return fmt.Errorf("write todo %d: %w", snapshot.Todos[i].ID, err)
		}
	}
	return nil
}

// Decode reads a snapshot written by Encode. It rejects a record count
// outside [0, capacity] and a stream that ends before every declared
// record has been read.
func Decode(r io.Reader, capacity int) (todo.Snapshot, error) {
	var h header
	if err := binary.Read(r, byteOrder, &h); err != nil {
		return todo.Snapshot{}, decodeError("read header", err)
	}
	if h.Count < 0 || int(h.Count) > capacity {
		return todo.Snapshot{}, fmt.Errorf("%w: invalid todo count %d (capacity %d)", ErrCorruptData, h.Count, capacity)
	}

	todos := make([]todo.Todo, 0, h.Count)
	for i := 0; i < int(h.Count); i++ {
		var block record
		if err := binary.Read(r, byteOrder, &block); err != nil {
			return todo.Snapshot{}, decodeError(fmt.Sprintf("read todo %d of %d", i+1, h.Count), err)
		}
		todos = append(todos, decodeRecord(&block))
	}

	return todo.Snapshot{Todos: todos, NextID: int(h.NextID)}, nil
}

func encodeRecord(t *todo.Todo) (record, error) {
	var block record
	if !fitsInt32(t.ID) {
		return record{}, fmt.Errorf("encode todo %d: %w", t.ID, ErrIDOutOfRange)
	}
	if len(t.Title) >= len(block.Title) {
		return record{}, fmt.Errorf("encode todo %d: %w", t.ID, todo.ErrTitleTooLong)
	}
	if len(t.Description) >= len(block.Description) {
		return record{}, fmt.Errorf("encode todo %d: %w", t.ID, todo.ErrDescriptionTooLong)
	}

	block.ID = int32(t.ID)
	copy(block.Title[:], t.Title)
	copy(block.Description[:], t.Description)
	block.Priority = int32(t.Priority)
	block.Status = int32(t.Status)
	block.CreatedAt = t.CreatedAt.UnixNano()
	block.UpdatedAt = t.UpdatedAt.UnixNano()
	return block, nil
}

func fitsInt32(n int) bool {
	return n >= math.MinInt32 && n <= math.MaxInt32
}

func decodeRecord(block *record) todo.Todo {
	return todo.Todo{
		ID:          int(block.ID),
		Title:       cString(block.Title[:]),
		Description: cString(block.Description[:]),
		Priority:    todo.Priority(block.Priority),
		Status:      todo.Status(block.Status),
		CreatedAt:   time.Unix(0, block.CreatedAt),
		UpdatedAt:   time.Unix(0, block.UpdatedAt),
	}
}

// cString returns the bytes before the first NUL.
func cString(buf []byte) string {
	if end := bytes.IndexByte(buf, 0); end >= 0 {
		buf = buf[:end]
	}
	return string(buf)
}

func decodeError(step string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s: file truncated", ErrCorruptData, step)
	}
	return fmt.Errorf("%w: %s: %w", ErrIO, step, err)
}
