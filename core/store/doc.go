// Package store is the app server's centralized state container.
//
// A Store declares four regions: state, synchronous mutations, asynchronous
// actions and a registry of sub-modules. State is only written through Commit,
// which runs one mutation at a time under the store lock and then notifies
// subscribers with a snapshot. Dispatch runs an action with the caller's
// context; actions commit through their ActionContext. Module-scoped names are
// addressed as "module/name".
//
// The application store built at bootstrap declares all four regions and
// populates none of them.
package store
