// Package lockfile reads Conan lockfiles into the lockfile graph.
package lockfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"

	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader implements ports.LockfileLoader.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

type fileDTO struct {
	Version   string       `json:"version"`
	GraphLock graphLockDTO `json:"graph_lock"`
}

type graphLockDTO struct {
	Nodes map[string]nodeDTO `json:"nodes"`
}

type nodeDTO struct {
	Pref     string      `json:"pref"`
	Requires requiresDTO `json:"requires"`
	Modified bool        `json:"modified"`
}

// requiresDTO accepts either an object of slot to uid or an array of uids.
type requiresDTO []domain.Require

func (r *requiresDTO) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = nil
		return nil
	}

	if data[0] == '[' {
		var uids []string
		if err := json.Unmarshal(data, &uids); err != nil {
			return err
		}
		out := make(requiresDTO, 0, len(uids))
		for i, uid := range uids {
			out = append(out, domain.Require{Slot: strconv.Itoa(i), UID: uid})
		}
		*r = out
		return nil
	}

	var slots orderedObject
	if err := json.Unmarshal(data, &slots); err != nil {
		return err
	}
	out := make(requiresDTO, 0, len(slots))
	for _, kv := range slots {
		out = append(out, domain.Require{Slot: kv.key, UID: kv.value})
	}
	*r = out
	return nil
}

type keyValue struct {
	key, value string
}

// orderedObject decodes a JSON object of strings preserving key order.
type orderedObject []keyValue

func (o *orderedObject) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return &json.UnmarshalTypeError{Value: fmt.Sprint(tok), Type: reflect.TypeFor[orderedObject]()}
	}

	var out orderedObject
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return err
		}
		out = append(out, keyValue{key: key, value: value})
	}

	*o = out
	return nil
}

// Load reads and parses the lockfile at path.
func (l *Loader) Load(path string) (*domain.Lockfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockfileReadFailed.Error()), "path", path)
	}

	lockfile, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return lockfile, nil
}

// Parse decodes lockfile JSON.
func Parse(data []byte) (*domain.Lockfile, error) {
	var file fileDTO
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileParseFailed.Error())
	}

	lockfile := domain.NewLockfile(file.Version)
	for uid, node := range file.GraphLock.Nodes {
		ref, err := domain.ParsePackageReference(node.Pref)
		if err != nil {
			return nil, zerr.With(err, "uid", uid)
		}
		lockfile.AddNode(&domain.LockfileNode{
			UID:      uid,
			Ref:      ref,
			Requires: node.Requires,
			Modified: node.Modified,
		})
	}

	return lockfile, nil
}
