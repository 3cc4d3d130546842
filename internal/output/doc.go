// Package output provides output sinks for checks, enabling both
// streaming and buffered output modes.
//
// The Output interface abstracts check output, allowing the same check
// code to work in both sequential and parallel execution modes:
//
//   - StreamingOutput: Writes directly to io.Writer for sequential execution
//   - BufferedOutput: Collects output in memory for parallel execution
//
// Usage Example (Sequential):
//
//	out := output.NewStreamingOutput(os.Stdout)
//	out.Title("Testing for supported ciphers:")
//	out.OK("cipherlist_NULL  not offered")
//	out.Vuln("cipherlist_EXPORT  offered")
//
// Usage Example (Parallel):
//
//	out := output.NewBufferedOutput()
//	out.Info("running check...")
//	// ... check runs ...
//	out.Flush(os.Stdout)  // Write all buffered output at once
//
// Buffered flushing is what keeps concurrently running checks from
// interleaving their text: each check writes to its own buffer and the
// runner flushes whole blocks under a shared lock.
//
// All implementations are thread-safe with mutex protection.
package output
