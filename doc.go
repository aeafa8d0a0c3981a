// Package racp implements the client side of the Record Access
// Control Point (RACP) protocol shared by the Bluetooth health-device
// services (Glucose, Blood Pressure, Weight Scale, and vendor
// extensions).
//
// RACP is a control-point characteristic: the client writes a request
// envelope and the peripheral answers asynchronously with exactly one
// indication on the same characteristic. The protocol is strictly
// serial; a peripheral processes one operation fully before accepting
// the next, and the engine enforces the same discipline locally by
// admitting at most one outstanding exchange.
//
// USAGE
//
// The package is transport-agnostic. Provide a Transport that
// performs a GATT write-with-response on the control-point
// characteristic, and feed raw indication payloads and link loss back
// into the engine:
//
//	cp := racp.NewControlPoint(transport)
//
//	// from the BLE layer's delivery path:
//	//   cp.HandleNotification(payload)
//	//   cp.HandleDisconnect()
//
//	if err := cp.ReportRecords(ctx, racp.AllRecords()); err != nil {
//		var rc racp.ResponseCode
//		if errors.As(err, &rc) && rc == racp.ResponseNoRecordsFound {
//			// nothing stored
//		}
//	}
//
//	n, err := cp.RecordCount(ctx, racp.GreaterThanOrEqual(
//		racp.FilterBySequenceNumber(100)))
//
// When a device exposes several control points, build a Registry
// mapping characteristic UUIDs to engines and route notifications
// through it.
//
// ERRORS
//
// Operations fail in one of three disjoint ways: a ResponseCode (the
// peripheral reported a specification-defined negative outcome, e.g.
// noRecordsFound), a *FormatError (the response violated the protocol
// shape or did not correlate with the request), or a transport error
// passed through unchanged. Nothing is retried automatically; retry
// policy belongs to the caller, because blindly repeating a partially
// executed operation such as a delete is unsafe.
//
// The typed record-access clients and the standard health-service
// UUIDs live in the health subpackage.
package racp
