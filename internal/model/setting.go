package model

// PasscodeKey is the settings key holding the app lock passcode.
const PasscodeKey = "passcode"

// Setting is a single key/value pair of app state, such as the passcode.
// Settings survive a data wipe.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
