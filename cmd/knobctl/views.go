package main

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/tarantool/go-knobs/marshaller"
	"github.com/tarantool/go-knobs/variable"
)

type recordView struct {
	Name       string `yaml:"name"`
	GUID       string `yaml:"guid"`
	Attributes string `yaml:"attributes"`
	Size       int    `yaml:"size"`
	Data       string `yaml:"data"`
}

func newRecordView(v variable.Variable) recordView {
	return recordView{
		Name:       v.Name,
		GUID:       v.GUID.String(),
		Attributes: v.Attributes.String(),
		Size:       v.Size(),
		Data:       hex.EncodeToString(v.Data),
	}
}

func recordViews(vars []variable.Variable) []recordView {
	out := make([]recordView, 0, len(vars))
	for _, v := range vars {
		out = append(out, newRecordView(v))
	}

	return out
}

type profileView struct {
	GUID    string       `yaml:"guid"`
	Entries []recordView `yaml:"entries,omitempty"`
	Error   string       `yaml:"error,omitempty"`
}

type bootView struct {
	Active       string   `yaml:"active"`
	Claimed      string   `yaml:"claimed"`
	CacheUpdated bool     `yaml:"cache_updated"`
	Skipped      bool     `yaml:"skipped"`
	Corrected    []string `yaml:"corrected,omitempty"`
	Failed       []string `yaml:"failed,omitempty"`
	Resets       []string `yaml:"resets,omitempty"`
	Settings     []string `yaml:"settings,omitempty"`
}

func printYAML[T any](cmd *cobra.Command, v T) error {
	out, err := marshaller.NewTypedYamlMarshaller[T]().Marshal(v)
	if err != nil {
		return err //nolint:wrapcheck
	}

	_, err = cmd.OutOrStdout().Write(out)

	return err //nolint:wrapcheck
}
