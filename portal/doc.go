// Package portal implements the Inlet/Outlet pair (spec §4.8): Inlet
// collects normalised children into a shared node list on setup and
// removes them on disposal; Outlet renders that list wherever it is
// mounted, with at most one live Outlet per Pair. Grounded on
// appmanager/store.go's single mutable-state-holder shape, generalized
// from one struct's Get/Set/Replace into a node-collecting signal, and
// on list.For for the actual rendering of the collected nodes.
package portal
