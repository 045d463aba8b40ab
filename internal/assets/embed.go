package assets

import "embed"

//go:embed youtube-extract.example.yaml
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "youtube-extract.example.yaml"
