// Package catalog runs the startup merge of message catalogs.
//
// For every configured culture the bundled catalog is loaded, the consumer
// override file is loaded, the two are merged and the result is written back
// to the override path, strictly in that order. The merged documents are
// then handed to the message lookup service. Any failure aborts startup.
package catalog
