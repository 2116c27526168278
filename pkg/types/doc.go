// Package types defines the Tracker interface, the Habit record with its
// streak and completion-rate engine, the calendar Date value type, the fixed
// category list, report records, and the standard errors of the habits tool.
package types
