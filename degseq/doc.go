// Package degseq provides the graphicality test (Havel–Hakimi),
// degree-sequence generation toward a target edge count, and the
// stable fingerprint used to group Runs by problem instance.
//
// AI-Hints: IsGraphical is pure and total — it never panics and never
// mutates its input. GenerateFixedSum does NOT imply graphicality;
// callers must check IsGraphical on the result before realizing it.
package degseq
