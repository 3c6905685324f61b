package train

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gradweaver/internal/nn"
)

// ErrBadCheckpoint marks checkpoints that do not match the model shape.
var ErrBadCheckpoint = errors.New("bad checkpoint")

// CheckpointError wraps a checkpoint load failure.
type CheckpointError struct {
	Msg string
}

func (e *CheckpointError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", ErrBadCheckpoint.Error(), e.Msg)
}

func (e *CheckpointError) Unwrap() error { return ErrBadCheckpoint }

func badCheckpointf(format string, args ...any) error {
	return &CheckpointError{Msg: fmt.Sprintf(format, args...)}
}

// Checkpoint is the persistent form of a trained model: layer sizing plus the
// flattened parameter data in Parameters() order.
type Checkpoint struct {
	Sizes  []int     `json:"sizes"`
	Params []float64 `json:"params"`
}

// SaveCheckpoint writes the model parameters to path atomically
// (temp file + fsync + rename + dir sync).
func SaveCheckpoint(path string, model *nn.MLP) error {
	params := model.Parameters()
	cp := Checkpoint{Sizes: model.Sizes(), Params: make([]float64, len(params))}
	for i, p := range params {
		cp.Params[i] = p.Data()
	}

	data, err := jsonMarshalStable(cp)
	if err != nil {
		return fmt.Errorf("train: marshal checkpoint: %w", err)
	}
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("train: write checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint restores parameters into model via SetData.
//
// The checkpoint must have been written for the same layer sizing; shape
// mismatches return a *CheckpointError.
func LoadCheckpoint(path string, model *nn.MLP) error {
	var cp Checkpoint
	if err := readJSONStrict(path, &cp); err != nil {
		return fmt.Errorf("train: read checkpoint %s: %w", path, err)
	}

	sizes := model.Sizes()
	if len(cp.Sizes) != len(sizes) {
		return badCheckpointf("sizes %v do not match model %v", cp.Sizes, sizes)
	}
	for i, s := range sizes {
		if cp.Sizes[i] != s {
			return badCheckpointf("sizes %v do not match model %v", cp.Sizes, sizes)
		}
	}

	params := model.Parameters()
	if len(cp.Params) != len(params) {
		return badCheckpointf("expected %d params, got %d", len(params), len(cp.Params))
	}
	for i, p := range params {
		p.SetData(cp.Params[i])
	}
	return nil
}

func jsonMarshalStable(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func readJSONStrict(path string, dst any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// Ensure no trailing junk.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("invalid JSON: trailing content")
	}
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return fsyncDir(dir)
}

func fsyncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}
