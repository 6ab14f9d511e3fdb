// Package securityaudit runs a corpus of attack and acceptance probes against
// the field validators and reports every probe that was handled incorrectly.
//
// A Probe names the field it targets, the raw input and whether the input
// must be accepted. Besides the expected verdict, Run checks the properties
// every outcome must have: rejections carry a reason and a message, accepted
// values contain none of < > " ' &, have no leading, trailing or repeated
// whitespace, numeric values stay within [0, 999999.99], and validating an
// accepted value again yields the same value.
//
//	report := securityaudit.Run(ctx, securityaudit.DefaultProbes(),
//		securityaudit.WithLogger(log),
//	)
//	if err := report.Err(); err != nil {
//		return err
//	}
//
// Each run gets a random run ID. It is stored in the context passed to the
// logger so records can be correlated; see RunIDFromContext.
package securityaudit
