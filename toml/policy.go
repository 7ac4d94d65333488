// Package toml loads and writes safeguard policies as TOML files.
package toml

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/checklist"
)

// LoadPolicy reads a policy file. Keys missing from the file keep their
// default values, so a file may override a single ceiling.
//
// Returns ENOTFOUND if the file does not exist and EINVALID if it cannot be
// decoded, names an unknown key, or sets a non-positive ceiling.
func LoadPolicy(path string) (checklist.Policy, error) {
	policy := checklist.DefaultPolicy()

	md, err := toml.DecodeFile(path, &policy)
	if errors.Is(err, fs.ErrNotExist) {
		return checklist.Policy{}, checklist.Errorf(checklist.ENOTFOUND, "policy file %q not found", path)
	}
	if err != nil {
		return checklist.Policy{}, checklist.Errorf(checklist.EINVALID, "decode policy %q: %v", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return checklist.Policy{}, checklist.Errorf(checklist.EINVALID, "unknown policy keys in %q: %s", path, strings.Join(keys, ", "))
	}

	if err := policy.Validate(); err != nil {
		return checklist.Policy{}, err
	}
	return policy, nil
}

// EncodePolicy writes policy to w in the format LoadPolicy reads.
func EncodePolicy(w io.Writer, policy checklist.Policy) error {
	if err := toml.NewEncoder(w).Encode(policy); err != nil {
		return fmt.Errorf("error encoding policy: %w", err)
	}
	return nil
}

// WritePolicy creates or truncates the file at path with the policy.
func WritePolicy(path string, policy checklist.Policy) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating policy file: %w", err)
	}
	if err := EncodePolicy(file, policy); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
