// Package scenefile reads and writes grove scenes as YAML documents.
//
// A document names the scene and lists its root nodes. Each node may carry a
// local transform, bounds, flags and children:
//
//	name: solar
//	nodes:
//	  - name: sun
//	    scale: [2, 2, 2]
//	    bounds: {min: [-1, -1, -1], max: [1, 1, 1]}
//	    children:
//	      - name: earth
//	        translation: [10, 0, 0]
//	        euler: [0, 0, 23.4]
//
// Rotation is given either as euler angles in degrees (applied X, then Y,
// then Z) or as a quaternion [w, x, y, z]. Encode always writes quaternions.
package scenefile
