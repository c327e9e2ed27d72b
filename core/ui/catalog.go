package ui

var catalogs = map[string]map[string]string{
	"zh-CN": {
		"app.title":          "数据分析平台",
		"nav.home":           "首页",
		"nav.preview":        "数据预览",
		"nav.analyze":        "数据分析",
		"nav.visualize":      "数据可视化",
		"home.intro":         "上传 CSV 数据集，然后预览、清洗、分析并可视化。",
		"home.upload":        "上传数据集",
		"home.datasets":      "数据集列表",
		"preview.title":      "数据预览",
		"preview.rows":       "显示行数",
		"analyze.title":      "数据分析",
		"analyze.missing":    "缺失值处理",
		"analyze.outliers":   "异常值检测",
		"analyze.normalize":  "数据标准化",
		"analyze.regression": "线性回归",
		"visualize.title":    "数据可视化",
		"visualize.line":     "折线图",
		"visualize.bar":      "柱状图",
		"visualize.scatter":  "散点图",
		"common.file":        "文件",
		"common.endpoint":    "接口",
		"common.back":        "返回首页",
	},
	"en": {
		"app.title":          "Data Studio",
		"nav.home":           "Home",
		"nav.preview":        "Preview",
		"nav.analyze":        "Analyze",
		"nav.visualize":      "Visualize",
		"home.intro":         "Upload a CSV dataset, then preview, clean, analyze and visualize it.",
		"home.upload":        "Upload dataset",
		"home.datasets":      "Datasets",
		"preview.title":      "Data preview",
		"preview.rows":       "Rows shown",
		"analyze.title":      "Data analysis",
		"analyze.missing":    "Missing values",
		"analyze.outliers":   "Outlier detection",
		"analyze.normalize":  "Normalization",
		"analyze.regression": "Linear regression",
		"visualize.title":    "Data visualization",
		"visualize.line":     "Line chart",
		"visualize.bar":      "Bar chart",
		"visualize.scatter":  "Scatter plot",
		"common.file":        "File",
		"common.endpoint":    "Endpoint",
		"common.back":        "Back to home",
	},
}
