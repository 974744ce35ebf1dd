// Package serial reads and writes scene files, the YAML rendition of a
// document's structural tree.
//
// A scene file carries a semantic version and a root node:
//
//	version: v1.0.0
//	root:
//	  instance: VBox
//	  fx:id: box
//	  properties:
//	    - name: spacing
//	      value: "10"
//	    - name: children
//	      objects:
//	        - instance: Button
//	          properties:
//	            - name: GridPane.rowIndex
//	              value: "1"
//	        - reference: box
//
// Every node is exactly one of instance, collection, reference or include.
// A property with a value is a literal property; any other property holds
// the listed objects. Converting a document to a file and back, or
// re-exporting its materialized graph, preserves every object variant.
package serial
