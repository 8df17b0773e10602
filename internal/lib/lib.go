// Packages lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains shared utilities such as the JSON tree helpers the
// response envelope is built with.
package lib
