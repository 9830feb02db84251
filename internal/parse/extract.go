package parse

import "github.com/tidwall/gjson"

// Message pulls a human-readable message out of an upload or error body.
//
// The service answers either {"message": "..."} or a bare JSON string; any
// other body (HTML error pages included) yields "".
func Message(raw []byte) string {
	if !gjson.ValidBytes(raw) {
		return ""
	}
	root := gjson.ParseBytes(raw)
	switch {
	case root.Type == gjson.String:
		return root.String()
	case root.IsObject():
		if m := root.Get("message"); m.Type == gjson.String {
			return m.String()
		}
	}
	return ""
}

// Transcript decodes the speech_to_text payload {"text": "..."}.
func Transcript(raw []byte) (string, error) {
	root, err := object(raw)
	if err != nil {
		return "", err
	}
	text := root.Get("text")
	if text.Type != gjson.String {
		return "", malformed("text", "string", text)
	}
	return text.String(), nil
}
