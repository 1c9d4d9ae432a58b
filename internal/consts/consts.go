package consts

const (
	NFet01v8Model = "sky130_fd_pr__nfet_01v8__model" // unbinned NMOS model name in sky130 netlists
	IVDataFile    = "sky130_fd_pr__nfet_01v8__iv.data"
	IVDataURLBase = "https://raw.githubusercontent.com/google/skywater-pdk-libs-sky130_fd_pr/main/cells/nfet_01v8/tests"
)
