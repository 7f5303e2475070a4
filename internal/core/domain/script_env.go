package domain

// Names of the variables that describe the script to the generated package.
const (
	EnvScriptPath     = "RSCRIPT_PATH"
	EnvScriptSafeName = "RSCRIPT_SAFE_NAME"
	EnvScriptPkgName  = "RSCRIPT_PKG_NAME"
	EnvScriptBasePath = "RSCRIPT_BASE_PATH"
)

// ScriptEnv carries the identity of the resolved script into rendering and the build command.
type ScriptEnv struct {
	Path     string
	SafeName string
	PkgName  string
	BasePath string
}

// NewScriptEnv builds the script environment for an input.
func NewScriptEnv(input Input) ScriptEnv {
	return ScriptEnv{
		Path:     input.Path(),
		SafeName: input.SafeName(),
		PkgName:  PackageName(input.SafeName()),
		BasePath: input.BaseDir(),
	}
}

// Environ returns the variables in KEY=value form.
func (e ScriptEnv) Environ() []string {
	return []string{
		EnvScriptPath + "=" + e.Path,
		EnvScriptSafeName + "=" + e.SafeName,
		EnvScriptPkgName + "=" + e.PkgName,
		EnvScriptBasePath + "=" + e.BasePath,
	}
}
