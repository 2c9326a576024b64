// Package recording reads recorded heart-monitor sessions and keeps a bounded
// interval history for replay.
//
// A session is a stream of records separated by CR and/or LF. Each record is
// a symbol followed by an integer:
//
//	S512   raw sensor sample
//	B74    averaged heart rate in beats/min
//	Q812   inter-beat interval in ms
//
// Files that hold one interval per line without a symbol are read as Q
// records. Malformed records are skipped and reported as [Issue] values.
package recording
