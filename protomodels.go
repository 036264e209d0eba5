// Package protomodels recovers a protobuf schema from annotated Kotlin
// model sources.
package protomodels

// Version is the current protomodels version
const Version = "0.2.0"
