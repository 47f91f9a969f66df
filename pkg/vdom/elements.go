package vdom

// Element helpers wrap H for the tags the application uses.

// Document structure elements

func Header(props Props, children ...any) *VNode  { return H("header", props, children...) }
func Footer(props Props, children ...any) *VNode  { return H("footer", props, children...) }
func Main(props Props, children ...any) *VNode    { return H("main", props, children...) }
func Nav(props Props, children ...any) *VNode     { return H("nav", props, children...) }
func Section(props Props, children ...any) *VNode { return H("section", props, children...) }
func H1(props Props, children ...any) *VNode      { return H("h1", props, children...) }
func H2(props Props, children ...any) *VNode      { return H("h2", props, children...) }
func H3(props Props, children ...any) *VNode      { return H("h3", props, children...) }

// Text content elements

func Div(props Props, children ...any) *VNode    { return H("div", props, children...) }
func P(props Props, children ...any) *VNode      { return H("p", props, children...) }
func Span(props Props, children ...any) *VNode   { return H("span", props, children...) }
func Ul(props Props, children ...any) *VNode     { return H("ul", props, children...) }
func Ol(props Props, children ...any) *VNode     { return H("ol", props, children...) }
func Li(props Props, children ...any) *VNode     { return H("li", props, children...) }
func A(props Props, children ...any) *VNode      { return H("a", props, children...) }
func Strong(props Props, children ...any) *VNode { return H("strong", props, children...) }
func Em(props Props, children ...any) *VNode     { return H("em", props, children...) }
func Small(props Props, children ...any) *VNode  { return H("small", props, children...) }

// Form elements

func Form(props Props, children ...any) *VNode     { return H("form", props, children...) }
func Input(props Props, children ...any) *VNode    { return H("input", props, children...) }
func Textarea(props Props, children ...any) *VNode { return H("textarea", props, children...) }
func Select(props Props, children ...any) *VNode   { return H("select", props, children...) }
func Option(props Props, children ...any) *VNode   { return H("option", props, children...) }
func Button(props Props, children ...any) *VNode   { return H("button", props, children...) }
func Label(props Props, children ...any) *VNode    { return H("label", props, children...) }

// Table elements

func Table(props Props, children ...any) *VNode { return H("table", props, children...) }
func Thead(props Props, children ...any) *VNode { return H("thead", props, children...) }
func Tbody(props Props, children ...any) *VNode { return H("tbody", props, children...) }
func Tr(props Props, children ...any) *VNode    { return H("tr", props, children...) }
func Th(props Props, children ...any) *VNode    { return H("th", props, children...) }
func Td(props Props, children ...any) *VNode    { return H("td", props, children...) }

// Media elements

func Img(props Props, children ...any) *VNode    { return H("img", props, children...) }
func Canvas(props Props, children ...any) *VNode { return H("canvas", props, children...) }
