package logging

// LogEvent is the structured log key used to signal log events that
// tooling may want to match on.
//
// Values should be defined as constants in the respective modules
// that emit these events.
const LogEvent = "log_event"
