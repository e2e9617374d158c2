// Package shipment contains the Shipment aggregate: the mutable record
// tracking one escrowed physical item from funding through dispatch,
// delivery, and either buyer confirmation (release), dispute (freeze), or
// cancellation. All business preconditions live here or in the Status state
// machine; stores persist whatever state the aggregate hands them.
package shipment
