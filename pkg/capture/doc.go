// Package capture supplies plaintext snapshot bytes to the sealing
// pipeline. Providers are interchangeable: CommandProvider shells out
// to a webcam tool and takes its stdout, FileProvider reads an image
// from disk. The rest of the system treats snapshot data as an opaque
// payload.
package capture
