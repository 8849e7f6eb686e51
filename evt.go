package asn1kit

/*
evt.go contains EventType constants which are (only) used
for debugging when this package was built or run with the
"-tags asn1kit_debug" flag.
*/

/*
EventType describes a specific kind of [Tracer] event. See the
[EventType] constants for a full list and descriptions.

Note that this type and all of its constants are only meaningful
if/when this package was run or built with the "-tags asn1kit_debug"
flag. Otherwise, they can be ignored entirely.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events (use with extreme caution)
)

const (
	EventEnter     EventType = 1 << iota //     1: Called-function begin
	EventInfo                            //     2: Interim function event
	EventExit                            //     4: Called function exit
	EventIO                              //     8: Called function inputs/outputs
	EventTLV                             //    16: TLV ops
	EventPerf                            //    32: Timing/microbenchmarks
	EventComposite                       //    64: SEQUENCE/SET/CHOICE recursion
	EventPrim                            //   128: ASN.1 PRIMITIVE ops
	EventChoice                          //   256: ASN.1 CHOICE ops
	EventConstraint                      //   512: Constraint ops
	EventSchema                          //  1024: compiler resolver ops
	EventTrace                           //  2048: Low-level ops; allocs, pools, appends, locks, et al.
	EventCodec                           //  4096: Encoding/decoding operations
	_                                    //  8192: unassigned
	_                                    // 16384: unassigned
	_                                    // 32768: unassigned
)
