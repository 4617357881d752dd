// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/pdiddy/search-tools/internal/enum"
)

// The optional flag values below leave their target nil until the flag is
// given, so an unset flag never reaches a request.

type optString struct{ target **string }

func (o optString) String() string {
	if *o.target == nil {
		return ""
	}
	return **o.target
}

func (o optString) Set(s string) error {
	*o.target = &s
	return nil
}

func (o optString) Type() string { return "string" }

type optInt64 struct{ target **int64 }

func (o optInt64) String() string {
	if *o.target == nil {
		return ""
	}
	return strconv.FormatInt(**o.target, 10)
}

func (o optInt64) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*o.target = &v
	return nil
}

func (o optInt64) Type() string { return "int" }

type optInt32 struct{ target **int32 }

func (o optInt32) String() string {
	if *o.target == nil {
		return ""
	}
	return strconv.FormatInt(int64(**o.target), 10)
}

func (o optInt32) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return err
	}
	n := int32(v)
	*o.target = &n
	return nil
}

func (o optInt32) Type() string { return "int" }

type optFloat32 struct{ target **float32 }

func (o optFloat32) String() string {
	if *o.target == nil {
		return ""
	}
	return strconv.FormatFloat(float64(**o.target), 'g', -1, 32)
}

func (o optFloat32) Set(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	f := float32(v)
	*o.target = &f
	return nil
}

func (o optFloat32) Type() string { return "float" }

func stringFlag(fs *pflag.FlagSet, target **string, name, usage string) {
	fs.Var(optString{target}, name, usage)
}

func int64Flag(fs *pflag.FlagSet, target **int64, name, usage string) {
	fs.Var(optInt64{target}, name, usage)
}

func int32Flag(fs *pflag.FlagSet, target **int32, name, usage string) {
	fs.Var(optInt32{target}, name, usage)
}

func float32Flag(fs *pflag.FlagSet, target **float32, name, usage string) {
	fs.Var(optFloat32{target}, name, usage)
}

// enumFlag registers an enumeration flag and lists its choices in the help.
func enumFlag[T ~int](fs *pflag.FlagSet, set *enum.Set[T], target **T, name, usage string) {
	fs.Var(set.Var(target), name, usage+" ("+strings.Join(set.Names(), ", ")+")")
}
