// Package loadorder implements the record collaborators on top of YAML
// plugin files.
//
// A plugin file lists records:
//
//	name: MyMod.esp
//	masters: [Fallout4.esm]
//	records:
//	  - kind: misc_item
//	    form_key: 000800          # relative ids belong to this plugin
//	    editor_id: MyToyTruck
//	    name: Toy Truck
//	    keywords: [0B0E9B:Fallout4.esm]
//	    components:
//	      - component: 01FA91:Fallout4.esm
//	        count: 2
//
// A LoadOrder stacks plugins, lowest priority first, and exposes the
// winning definition of every record. A PatchMod collects overrides and is
// itself written out as a plugin, so a later run can load it on top.
package loadorder
