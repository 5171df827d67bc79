// Package app wires configuration, the catalog, the session history and the
// assistant controller behind the shoplist command line.
//
// Commands:
//
//	shoplist repl                  typed utterances (default)
//	shoplist listen                utterances through the line recognizer
//	shoplist interpret <text...>   print the interpretation as JSON
//	shoplist categorize <name...>  print the category of each name
//	shoplist substitutes <item>    print substitutes for an item
//	shoplist catalog               print the reference data
package app
