package settings

import "encoding/xml"

// Setting is one (Id, Value) pair. Value is Base64: a var-list record for
// direct variables, a raw blob for managed settings.
type Setting struct {
	ID    string `xml:"Id"`
	Value string `xml:"Value"`
}

// SettingsPacket is the document accepted by Engine.Apply.
type SettingsPacket struct {
	XMLName                xml.Name  `xml:"SettingsPacket"`
	CreatedBy              string    `xml:"CreatedBy,omitempty"`
	CreatedOn              string    `xml:"CreatedOn,omitempty"`
	Version                string    `xml:"Version"`
	LowestSupportedVersion string    `xml:"LowestSupportedVersion"`
	Settings               []Setting `xml:"Settings>Setting"`
}

// SettingResult is the outcome of one Setting.
type SettingResult struct {
	ID     string `xml:"Id"`
	Result Status `xml:"Result"`
	Flags  Flags  `xml:"Flags"`
}

// ResultsPacket is written by Engine.Apply after the settings are processed.
type ResultsPacket struct {
	XMLName                xml.Name        `xml:"ResultsPacket"`
	CreatedOn              string          `xml:"CreatedOn"`
	Version                string          `xml:"Version"`
	LowestSupportedVersion string          `xml:"LowestSupportedVersion"`
	Settings               []SettingResult `xml:"Settings>SettingResult"`
}

// CurrentSettingsPacket is produced by Engine.Dump.
type CurrentSettingsPacket struct {
	XMLName                xml.Name  `xml:"CurrentSettingsPacket"`
	CreatedOn              string    `xml:"CreatedOn"`
	Version                uint32    `xml:"Version"`
	LowestSupportedVersion uint32    `xml:"LowestSupportedVersion"`
	Settings               []Setting `xml:"Settings>Setting"`
}

func marshalIndent(v any) ([]byte, error) {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return append([]byte(xml.Header), out...), nil
}
