// Package mailcheck checks email addresses the way signup forms need them
// checked. It is deliberately not an implementation of RFC 5322. I have
// written enough RFC-faithful address parsing to know that the full grammar
// accepts all kinds of things no mail provider will actually issue and no
// user will ever type on purpose, comments and quoted locals and address
// literals among them. This library goes the other way: it implements the
// narrow, practical grammar that matches the addresses real people hold,
// and it rejects the rest early, before they reach your database or your
// mail queue.
//
// The code is split according to the question being asked. The syntax
// package answers the grammar question: is this string shaped like an
// address, and if so, what are its local part and domain? The score package
// answers the trust question: given a domain, how much confidence does it
// deserve? It keeps tiered tables of trusted and disposable domains,
// either built in code or loaded from YAML. The validate package ties the
// two together into an engine that produces one Result per candidate.
//
// The validate package draws a line I consider the most important design
// decision in the library: a rejected address is not an error. Rejection
// is the engine doing its job, reported inside the Result. Errors are
// reserved for faults, meaning the caller handed us something that is not
// even a string, or a value too large to be worth scanning, or the engine
// itself broke. Batch checks soften faults further. A bad item in a batch
// becomes a rejected Result in its slot and the rest of the batch carries
// on, so one junk value in a feed never costs you the whole run.
//
// The cmd/mailcheck command wraps the same engine for shell use, checking
// single addresses, batches from arguments or stdin, and the address
// fields found in mail message headers.
package mailcheck
